// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strings"
)

// safeString null-terminates a string before it's handed to Vulkan
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return fmt.Sprintf("%s\x00", s)
}

func safeStrings(sgs []string) []string {
	safe := make([]string, 0, len(sgs))
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}

func containsString(sgs []string, s string) bool {
	for _, str := range sgs {
		if strings.TrimSuffix(str, "\x00") == s {
			return true
		}
	}
	return false
}
