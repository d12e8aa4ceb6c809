package pinfile

import "strings"

const DetectMethod = "pinfile"

func IsDetectMethod(method string) bool {
	switch strings.ToLower(method) {
	case "pin-file", "pin file", "version-file", DetectMethod:
		return true
	}
	return false
}
