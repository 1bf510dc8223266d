package deque

import "ht/model"

// 利用数组实现的环形双端队列，局部性好，容量固定时无需再分配

type ArrDeque struct {
	arr []model.Record

	// 头部元素所在下标
	start int
	// 元素个数
	size int
	// 容量
	capacity int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity <= 0 {
		capacity = 1
	}
	return &ArrDeque{
		arr:      make([]model.Record, capacity),
		capacity: capacity,
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Get(i int) model.Record {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[(ad.start+i)%ad.capacity]
}

func (ad *ArrDeque) Traverse(f func(i int, record model.Record)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[(ad.start+i)%ad.capacity])
	}
}

func (ad *ArrDeque) AddLast(record model.Record) {
	if ad.size == ad.capacity {
		ad.RemoveFirst()
	}
	ad.arr[(ad.start+ad.size)%ad.capacity] = record
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() {
	if ad.size == 0 {
		return
	}
	ad.start = (ad.start + 1) % ad.capacity
	ad.size--
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
