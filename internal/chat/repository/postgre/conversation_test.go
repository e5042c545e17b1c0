package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"voltassist/internal/model"
	"voltassist/pkg/log"
)

var convCols = []string{"id", "user_mobile", "title", "created_at", "updated_at"}

var msgCols = []string{"id", "conversation_id", "message_type", "content", "file_urls", "file_names", "created_at"}

func TestCreateConversation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())

	mock.ExpectExec("INSERT INTO chat_conversations").
		WithArgs(sqlmock.AnyArg(), "9876543210", "New Chat", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	conv, err := r.CreateConversation(context.Background(), model.Conversation{
		UserMobile: "9876543210",
		Title:      "New Chat",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.ID == "" {
		t.Error("expected generated ID")
	}
	if conv.UpdatedAt.IsZero() {
		t.Error("expected timestamps set")
	}
}

func TestGetConversationNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())

	mock.ExpectQuery("(?s)SELECT .+ FROM chat_conversations WHERE id").
		WithArgs("missing").
		WillReturnRows(mock.NewRows(convCols))

	conv, err := r.GetConversation(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.ID != "" {
		t.Errorf("expected zero-value conversation, got %+v", conv)
	}
}

func TestListConversationsOrdering(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())

	now := time.Now()
	rows := mock.NewRows(convCols).
		AddRow("conv-2", "9876543210", "battery question", now.Add(-time.Minute), now).
		AddRow("conv-1", "9876543210", "older chat", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("(?s)SELECT .+ FROM chat_conversations.+ORDER BY updated_at DESC").
		WithArgs("9876543210").
		WillReturnRows(rows)

	convs, err := r.ListConversations(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(convs) != 2 || convs[0].ID != "conv-2" {
		t.Errorf("unexpected result: %+v", convs)
	}
}

func TestInsertAndListMessages(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs(sqlmock.AnyArg(), "conv-1", model.MessageTypeUser, "where is my order",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := r.InsertMessage(ctx, model.Message{
		ConversationID: "conv-1",
		MessageType:    model.MessageTypeUser,
		Content:        "where is my order",
	})
	if err != nil {
		t.Fatalf("InsertMessage: %v", err)
	}
	if msg.ID == "" {
		t.Error("expected generated message ID")
	}

	now := time.Now()
	rows := mock.NewRows(msgCols).
		AddRow("msg-1", "conv-1", "user", "where is my order", "{}", "{}", now).
		AddRow("msg-2", "conv-1", "assistant", "Here is your order status", "{}", "{}", now.Add(time.Second))

	mock.ExpectQuery("(?s)SELECT .+ FROM chat_messages.+ORDER BY created_at ASC").
		WithArgs("conv-1").
		WillReturnRows(rows)

	msgs, err := r.ListMessages(ctx, "conv-1")
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].MessageType != model.MessageTypeUser {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}

func TestTouchConversation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())

	mock.ExpectExec("UPDATE chat_conversations SET title").
		WithArgs("how fast does it go", sqlmock.AnyArg(), "conv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := r.TouchConversation(context.Background(), "conv-1", "how fast does it go"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
