package domain

// Collection is the ordered set of all tasks held by one store.
// Insertion order is preserved.
type Collection struct {
	tasks []*Task
}

// NewCollection creates a collection holding tasks in the given order.
func NewCollection(tasks ...*Task) *Collection {
	c := &Collection{tasks: make([]*Task, 0, len(tasks))}
	c.tasks = append(c.tasks, tasks...)
	return c
}

// Tasks returns the tasks in stored order. The slice is a copy; the tasks are not.
func (c *Collection) Tasks() []*Task {
	out := make([]*Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// NextID returns max(id)+1, or 1 for an empty collection.
func (c *Collection) NextID() int64 {
	var maxID int64
	for _, t := range c.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// FindByID returns the first task with the given id.
func (c *Collection) FindByID(id int64) (*Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Append adds a task at the end of the collection.
func (c *Collection) Append(t *Task) {
	c.tasks = append(c.tasks, t)
}

// Remove deletes the first task with the given id and returns it.
func (c *Collection) Remove(id int64) (*Task, bool) {
	for i, t := range c.tasks {
		if t.ID == id {
			c.tasks = append(c.tasks[:i:i], c.tasks[i+1:]...)
			return t, true
		}
	}
	return nil, false
}

// Filter returns the tasks whose status equals status, in stored order.
// An empty status matches every task. Unknown values match nothing.
func (c *Collection) Filter(status string) []*Task {
	if status == "" {
		return c.Tasks()
	}
	var out []*Task
	for _, t := range c.tasks {
		if string(t.Status) == status {
			out = append(out, t)
		}
	}
	return out
}
