package cards

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/lib/types"
)

const imagePrefix, imageSuffix = "/images/", ".jpeg"

// ImageSrc returns path of n-th pool image
func ImageSrc(n int) string {
	return fmt.Sprintf("%s%d%s", imagePrefix, n, imageSuffix)
}

// ImageWidth returns css width of n pixels
func ImageWidth(n int) string {
	return types.Pixels(n).String()
}

// ParseImageSrc returns number of pool image referenced by src
func ParseImageSrc(src string) (int, error) {
	s, ok := strings.CutPrefix(src, imagePrefix)
	if !ok {
		return 0, fmt.Errorf("%w: image src %q", errors.ErrInvalidArgument, src)
	}
	s, ok = strings.CutSuffix(s, imageSuffix)
	if !ok {
		return 0, fmt.Errorf("%w: image src %q", errors.ErrInvalidArgument, src)
	}
	return ParseImageNumber(s)
}

// ParseImageNumber parses s as pool image number in [ImageMin,ImageMax]
func ParseImageNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: image number %q", errors.ErrInvalidArgument, s)
	}
	if n < ImageMin || n > ImageMax {
		return 0, fmt.Errorf("%w: image number %v out of pool", errors.ErrInvalidArgument, n)
	}
	return n, nil
}

// ParseImageWidth returns pixels of img width
func ParseImageWidth(width string) (int, error) {
	p, err := types.ParsePixels(width)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrInvalidArgument, err)
	}
	return int(p), nil
}
