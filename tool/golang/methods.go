package golang

import "strings"

const DetectMethod = "golang"

func IsDetectMethod(method string) bool {
	switch strings.ToLower(method) {
	case "go", DetectMethod:
		return true
	}
	return false
}
