package gw2

import (
	"net/url"
	"strconv"
	"strings"
)

// numberToParam renders a single numeric ID as a query fragment,
// e.g. "id=42".
func numberToParam(name string, value int) string {
	return name + "=" + strconv.Itoa(value)
}

// numbersToParam renders a list of numeric IDs as a comma-joined query
// fragment, e.g. "ids=1,2,3". The comma is the API's list separator and is
// sent literally; no trailing separator is emitted.
func numbersToParam(name string, values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return name + "=" + strings.Join(parts, ",")
}

// stringToParam renders a single string ID as a query fragment,
// e.g. "id=Thief". The value is query-escaped.
func stringToParam(name, value string) string {
	return name + "=" + url.QueryEscape(value)
}

// stringsToParam renders a list of string IDs as a comma-joined query
// fragment. Each element is query-escaped individually so the joining
// commas stay literal.
func stringsToParam(name string, values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = url.QueryEscape(v)
	}
	return name + "=" + strings.Join(parts, ",")
}

// pathSegment percent-encodes a value substituted into a path template,
// such as a character name.
func pathSegment(value string) string {
	return url.PathEscape(value)
}
