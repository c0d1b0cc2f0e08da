package response

type Message struct {
	Message string `json:"message"`
}

func NewMessage(message string) Message {
	return Message{Message: message}
}

func Deleted(entity string) Message {
	return NewMessage(entity + " deleted successfully")
}
