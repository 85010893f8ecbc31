package gridpath

// openSet orders nodes by f, then by insertion sequence, so that equal-f
// candidates come out in the order they were discovered.
type openSet []*node

func (queue openSet) Len() int { return len(queue) }
func (queue openSet) Less(i, j int) bool {
	if queue[i].f() != queue[j].f() {
		return queue[i].f() < queue[j].f()
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue openSet) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *openSet) Push(x any) {
	item := x.(*node)
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *openSet) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
