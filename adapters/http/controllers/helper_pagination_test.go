package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelperPagination(t *testing.T) {
	assert := require.New(t)

	data := func() []string {
		ret, max := []string{}, 100
		for x := 0; x < max; x++ {
			ret = append(ret, fmt.Sprintf("text-%v", x))
		}
		return ret
	}()
	testCases := []struct {
		desc    string
		inPage  int
		perPage int
		inData  []string
		outPage  int
		outPages int
		outData  []string
	}{
		{"empty input", 1, 20, nil, 1, 1, nil},
		{"page 1(20) from [40]", 1, 20, data[0:40], 1, 2, data[0:20]},
		{"page 0(20) from [40]", 0, 20, data[0:40], 1, 2, data[0:20]},
		{"page -1(20) from [40]", -1, 20, data[0:40], 1, 2, data[0:20]},
		{"page 2(20) from [38]", 2, 20, data[0:38], 2, 2, data[20:38]},
		{"page 3(20) from [38]", 3, 20, data[0:38], 2, 2, data[20:38]},
		{"page 5(20) from [100]", 5, 20, data, 5, 5, data[80:100]},
		{"page 2(30) from [30]", 2, 30, data[0:30], 1, 1, data[0:30]},
		{"page 2(0) from [30]", 2, 0, data[0:30], 1, 1, data[0:30]},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r := &http.Request{
				URL: &url.URL{
					RawQuery: fmt.Sprintf("page=%v", tC.inPage),
				},
			}
			outData, outPage, outPages := helperPagination(r, tC.inData, tC.perPage)
			assert.Equal(tC.outData, outData)
			assert.Equal(tC.outPage, outPage)
			assert.Equal(tC.outPages, outPages)
		})
	}
}
