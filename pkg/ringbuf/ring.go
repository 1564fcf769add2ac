// pkg/ringbuf/ring.go
package ringbuf

// Ring — кольцевой буфер фиксированной ёмкости.
//
// Логический индекс i (0 <= i < Len) всегда соответствует физическому слоту
// (tail + i) % Cap. Память выделяется один раз в New и больше не растёт.
// На граничных случаях методы ничего не меняют и возвращают false.
type Ring[T any] struct {
	items []T
	head  int // слот для следующего Push
	tail  int // слот логического элемента 0
	size  int
}

// New создаёт буфер на capacity элементов. capacity < 1 трактуется как 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Len возвращает количество живых элементов.
func (r *Ring[T]) Len() int { return r.size }

// Cap возвращает ёмкость буфера.
func (r *Ring[T]) Cap() int { return len(r.items) }

// Full сообщает, заполнен ли буфер.
func (r *Ring[T]) Full() bool { return r.size == len(r.items) }

// Push кладёт item в конец. Если буфер полон, новый элемент отбрасывается,
// а самый старый остаётся на месте. Возвращает false в этом случае.
func (r *Ring[T]) Push(item T) bool {
	if r.size == len(r.items) {
		return false
	}
	r.items[r.head] = item
	r.head = (r.head + 1) % len(r.items)
	r.size++
	return true
}

// RemoveAt удаляет логический элемент index, сдвигая все последующие на один
// слот к хвосту, так что порядок сохраняется. Стоимость O(Len).
func (r *Ring[T]) RemoveAt(index int) bool {
	if index < 0 || index >= r.size {
		return false
	}
	n := len(r.items)
	for i := index; i < r.size-1; i++ {
		r.items[(r.tail+i)%n] = r.items[(r.tail+i+1)%n]
	}
	r.size--
	r.head = (r.head - 1 + n) % n

	var zero T
	r.items[r.head] = zero
	return true
}

// PopFront выбрасывает логический элемент 0 за O(1).
func (r *Ring[T]) PopFront() bool {
	if r.size == 0 {
		return false
	}
	var zero T
	r.items[r.tail] = zero
	r.tail = (r.tail + 1) % len(r.items)
	r.size--
	return true
}

// At возвращает указатель на логический элемент i для изменения на месте,
// или nil, если i вне диапазона. Указатель действителен до следующего
// RemoveAt/PopFront.
func (r *Ring[T]) At(i int) *T {
	if i < 0 || i >= r.size {
		return nil
	}
	return &r.items[(r.tail+i)%len(r.items)]
}

// Items возвращает копию элементов в логическом порядке.
func (r *Ring[T]) Items() []T {
	out := make([]T, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.items[(r.tail+i)%len(r.items)])
	}
	return out
}

// Clear сбрасывает буфер без перевыделения памяти.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head, r.tail, r.size = 0, 0, 0
}
