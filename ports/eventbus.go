package ports

type Topic = string
type Event = []string
type EventBus interface {
	Shutdown()
	Pub(Topic, Event)
	Sub(Topic) chan Event
	Unsub(chan Event)
}

const (
	TopicConfigWatch    Topic = "config-watch"
	TopicConfigUpdated  Topic = "config-file-modified" // published by watcher "config"
	TopicDeckRegenerate Topic = "deck-regenerate"
	TopicDeckGenerated  Topic = "deck-generated"
)
