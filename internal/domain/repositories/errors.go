package repositories

import "errors"

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("记录不存在")
