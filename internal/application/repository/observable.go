// Package repository adapta las llamadas puntuales de los servicios HTTP a
// estado observable: cada repositorio publica el último valor conocido de un
// recurso y cualquier número de suscriptores lee ese único snapshot. No hay
// caché con TTL ni invalidación; cada publicación reemplaza el valor completo.
package repository

import "sync"

// Observable celda de un solo valor con suscripción. Cada Set reemplaza el
// valor completo y notifica a los suscriptores con semántica "último valor":
// un suscriptor lento no bloquea al publicador, solo pierde valores
// intermedios y recibe el más reciente.
type Observable[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
	subs    map[int]chan T
	nextID  int
}

// NewObservable crea la celda con el valor inicial dado.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

// Get devuelve el valor actual.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Version devuelve el número de publicaciones realizadas. Útil en tests
// para verificar que un fallo no publicó nada.
func (o *Observable[T]) Version() uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.version
}

// Subscribe registra un suscriptor. El canal entrega el último valor
// publicado; cancel libera la suscripción y cierra el canal.
func (o *Observable[T]) Subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	ch := make(chan T, 1)
	o.subs[id] = ch

	cancel := func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if sub, ok := o.subs[id]; ok {
			delete(o.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Set publica un valor nuevo reemplazando el anterior por completo.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.value = v
	o.version++
	for _, ch := range o.subs {
		// Descartar el valor pendiente para que el canal siempre
		// contenga el más reciente.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
