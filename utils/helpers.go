package utils

import "strings"

// UniqueStrings returns a new slice with duplicate entries removed,
// preserving the original order.
func UniqueStrings(slice []string) []string {
	keys := make(map[string]bool)
	uniqueSlice := []string{}
	for _, entry := range slice {
		if _, value := keys[entry]; !value {
			keys[entry] = true
			uniqueSlice = append(uniqueSlice, entry)
		}
	}
	return uniqueSlice
}

// NormalizeBrand canonicalizes a brand identifier the way the store keys it.
func NormalizeBrand(brand string) string {
	return strings.ToLower(strings.TrimSpace(brand))
}
