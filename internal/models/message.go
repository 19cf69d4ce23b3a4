package models

type MessageType int

const (
	User MessageType = iota
	Assistant
	Program
	System
)

type Message struct {
	Content string
	Type    MessageType
}
