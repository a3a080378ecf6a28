package orderedmap

/*
	Insertion-ordered map on top of container/list. Kept internal on
	purpose - swap for a standard implementation if one ever lands in the
	ecosystem.
*/

import (
	"container/list"
)

// OrderedMap stores key/value pairs and iterates them in insertion order.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// Iterator walks the map from Front to Back.
type Iterator[K comparable, V any] struct {
	curr *list.Element
	// Value is the value stored under Key
	Value V
	// Key is the key of the current pair
	Key *K
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores value under key, preserving the original insertion position
// when the key already exists.
func (o *OrderedMap[K, V]) Set(key K, value V) {
	if el, exists := o.store[key]; exists {
		kv := el.Value.(*keyValue[K, V])
		kv.value = value
		return
	}

	o.store[key] = o.keys.PushBack(&keyValue[K, V]{key: key, value: value})
}

// Get returns the value stored under key and whether it was found.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	el, exists := o.store[key]
	if !exists {
		var zero V
		return zero, false
	}

	return el.Value.(*keyValue[K, V]).value, true
}

// Has reports whether key exists.
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]

	return exists
}

// Delete removes key and returns whether it existed.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	el, exists := o.store[key]
	if !exists {
		return false
	}

	o.keys.Remove(el)
	delete(o.store, key)

	return true
}

// Count returns the number of stored pairs.
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Keys returns all keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for el := o.keys.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*keyValue[K, V]).key)
	}

	return keys
}

// Front returns an iterator positioned at the first pair in insertion
// order, or nil when the map is empty.
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	return makeIterator[K, V](o.keys.Front())
}

// Next advances the iterator, returning nil when iteration is done.
func (i *Iterator[K, V]) Next() *Iterator[K, V] {
	return makeIterator[K, V](i.curr.Next())
}

func makeIterator[K comparable, V any](el *list.Element) *Iterator[K, V] {
	if el == nil {
		return nil
	}

	kv := el.Value.(*keyValue[K, V])

	return &Iterator[K, V]{curr: el, Key: &kv.key, Value: kv.value}
}
