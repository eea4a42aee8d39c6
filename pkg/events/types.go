package events

// Widget event codes.
const (
	CatalogLoaded        = "catalog.loaded"
	CatalogCustomCreated = "catalog.custom_created"

	SelectionChanged = "selection.changed"

	ConversationStarted         = "conversation.started"
	ConversationRevealed        = "conversation.revealed"
	ConversationMessagesChanged = "conversation.messages_changed"
	ConversationLoadingChanged  = "conversation.loading_changed"
	ConversationClosed          = "conversation.closed"
	ConversationRestored        = "conversation.restored"
	ConversationDeleted         = "conversation.deleted"
	ConversationFocused         = "conversation.focused"
	ConversationsMinimized      = "conversation.minimized_all"

	WidgetHistoryToggled = "widget.history_toggled"
	WidgetMinimized      = "widget.minimized"

	PhoneStateChanged = "phone.state_changed"

	LeadChanged = "lead.changed"
)
