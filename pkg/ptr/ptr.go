package ptr

// Ptr возвращает указатель на переданное значение
func Ptr[T any](v T) *T {
	return &v
}

// Deref разыменовывает указатель, возвращая def если он nil
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
