// Package utils
package utils

func Find[T any](src []*T, comparator func(element *T) bool) *T {
	for _, v := range src {
		if comparator(v) {
			return v
		}
	}
	return nil
}

func Filter[T any](src []*T, filter func(element *T) bool) (result []*T) {
	result = make([]*T, 0, len(src))
	for _, v := range src {
		if filter(v) {
			result = append(result, v)
		}
	}
	return
}

func Map[T any, R any](src []T, mapper func(element T) R) (result []R) {
	result = make([]R, 0, len(src))
	for _, v := range src {
		result = append(result, mapper(v))
	}
	return
}

// ReverseForEach 倒序遍历, idx为元素原本的下标
func ReverseForEach[T any](src []T, callback func(idx int, element T)) {
	for i := len(src) - 1; i >= 0; i-- {
		callback(i, src[i])
	}
}
