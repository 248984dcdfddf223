package enrich

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Find walks doc depth-first in pre-order and returns the value of the first
// entry named key. Objects are visited in document order; array elements are
// keyed by their decimal position. The walk stops at the first match.
func Find(doc []byte, key string) (gjson.Result, bool) {
	return search(gjson.ParseBytes(doc), key)
}

func search(node gjson.Result, key string) (found gjson.Result, ok bool) {
	if !node.IsObject() && !node.IsArray() {
		return gjson.Result{}, false
	}
	array := node.IsArray()
	pos := 0
	node.ForEach(func(k, v gjson.Result) bool {
		name := k.String()
		if array {
			name = strconv.Itoa(pos)
			pos++
		}
		if name == key {
			found, ok = v, true
			return false
		}
		if r, hit := search(v, key); hit {
			found, ok = r, true
			return false
		}
		return true
	})
	return found, ok
}
