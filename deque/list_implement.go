package deque

import "ht/model"

// 利用双向链表实现的双端队列，与数组实现行为一致，用于对照测试

type ListDeque struct {
	head *node
	tail *node

	size     int
	capacity int
}

type node struct {
	val  model.Record
	pre  *node
	next *node
}

// 工厂方法
func NewListDeque(capacity int) *ListDeque {
	if capacity <= 0 {
		capacity = 1
	}
	head := &node{}
	tail := &node{}
	head.next = tail
	tail.pre = head

	return &ListDeque{
		head:     head,
		tail:     tail,
		capacity: capacity,
	}
}

func (ld *ListDeque) Size() int {
	return ld.size
}

func (ld *ListDeque) Get(i int) model.Record {
	if i < 0 || i >= ld.size {
		panic("index out of length")
	}
	iter := ld.head.next
	for ; i > 0; i-- {
		iter = iter.next
	}
	return iter.val
}

func (ld *ListDeque) Traverse(f func(i int, record model.Record)) {
	iter := ld.head.next
	for i := 0; i < ld.size; i++ {
		f(i, iter.val)
		iter = iter.next
	}
}

func (ld *ListDeque) AddLast(record model.Record) {
	if ld.size == ld.capacity {
		ld.RemoveFirst()
	}
	n := &node{val: record}
	n.pre = ld.tail.pre
	n.next = ld.tail
	ld.tail.pre.next = n
	ld.tail.pre = n
	ld.size++
}

func (ld *ListDeque) RemoveFirst() {
	if ld.size == 0 {
		return
	}
	first := ld.head.next
	ld.head.next = first.next
	first.next.pre = ld.head
	ld.size--
}

func (ld *ListDeque) IsFull() bool {
	return ld.size == ld.capacity
}

func (ld *ListDeque) IsEmpty() bool {
	return ld.size == 0
}
