/**
 *
 * 双端队列，用于保存最近的换算历史记录
 * 队列有固定容量，写满后从头部淘汰最旧的记录
 *
 */

package deque

import "ht/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的记录，0为最旧的一条
	Get(i int) model.Record

	// 正向遍历
	Traverse(f func(i int, record model.Record))

	// 在队列结尾增加一条记录，已满时先淘汰头部
	AddLast(record model.Record)

	// 在队列头部删除一条记录
	RemoveFirst()

	IsFull() bool

	IsEmpty() bool
}
