// Package imageset holds the error record produced while matching
// image files into image sets.
//
// An image set is a group of images, one per channel, that share a
// metadata key (for instance plate and well values). When a channel has
// no image for a key, or more than one, the matcher describes the
// problem with an Error.
package imageset
