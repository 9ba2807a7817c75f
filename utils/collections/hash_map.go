package collections

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *hashMap[K, V]) Put(k K, v V) {
	m.entries[k] = v
}

func (m *hashMap[K, V]) PutIfAbsent(k K, v V) error {
	if m.Contains(k) {
		return ErrValueExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *hashMap[K, V]) Clear() {
	m.entries = make(map[K]V)
}
