package twift

import (
	"net/url"
	"strconv"
)

func urlPathEscape(v string) string {
	return url.PathEscape(v)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
