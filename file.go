package rearrange

import "image"

// File decodes srcPath with dec, rearranges its tiles according to ordering
// and writes the result to dstPath with enc.
//
// If the request is not valid for the decoded image, ErrInvalidRequest is
// returned and enc is not called. Errors from dec and enc are returned
// unchanged.
func File(dec Decoder, enc Encoder, srcPath string, tileSize image.Point, ordering []int, dstPath string) error {
	src, err := dec.Decode(srcPath)
	if err != nil {
		return err
	}

	dst, err := Image(src, tileSize, ordering)
	if err != nil {
		return err
	}
	return enc.Encode(dstPath, dst)
}
