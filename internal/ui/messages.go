package ui

// historyPagerMsg contains the result of a history pager command
type historyPagerMsg struct {
	err error
}

// pauseRenderingMsg stops rendering while an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg restarts rendering once the pager exits
type resumeRenderingMsg struct{}
