// Package utils provides helpers for working with loosely-typed JSON values:
// strict numeric conversion, deep copies of decoded documents and removal of
// empty strings that the shadow store would otherwise persist.
package utils
