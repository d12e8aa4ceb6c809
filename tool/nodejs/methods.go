package nodejs

import "strings"

const DetectMethod = "nodejs"

func IsDetectMethod(method string) bool {
	switch strings.ToLower(method) {
	case "node", "node.js", DetectMethod:
		return true
	}
	return false
}
