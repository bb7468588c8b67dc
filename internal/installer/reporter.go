package installer

// Reporter receives progress notices while an install runs.
type Reporter interface {
	Step(current, total int, msg string)
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

type discard struct{}

func (discard) Step(int, int, string) {}
func (discard) Success(string)        {}
func (discard) Error(string)          {}
func (discard) Info(string)           {}
