package dashboard

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short user-facing message for operations whose failure must
// not break the dashboard: the numbers keep rendering and the notice says
// what happened.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

func successNotice(message string) Notice {
	return Notice{Level: NoticeSuccess, Message: message}
}

func infoNotice(message string) Notice {
	return Notice{Level: NoticeInfo, Message: message}
}

func errorNotice(message string) Notice {
	return Notice{Level: NoticeError, Message: message}
}
