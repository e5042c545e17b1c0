package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "voltassist/internal/chat/repository"
	"voltassist/internal/model"
)

const conversationColumns = `id, user_mobile, title, created_at, updated_at`

const messageColumns = `id, conversation_id, message_type, content, file_urls, file_names, created_at`

func (r *implRepository) CreateConversation(ctx context.Context, conv model.Conversation) (model.Conversation, error) {
	now := time.Now().UTC()
	conv.ID = uuid.NewString()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	query := `INSERT INTO chat_conversations (id, user_mobile, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, conv.ID, conv.UserMobile, conv.Title,
		conv.CreatedAt, conv.UpdatedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repo.ErrFailedToCreate
	}
	return conv, nil
}

// GetConversation returns a zero-value Conversation when not found — no error.
func (r *implRepository) GetConversation(ctx context.Context, id string) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM chat_conversations WHERE id = $1 LIMIT 1`

	var conv model.Conversation
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&conv.ID, &conv.UserMobile, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConversation"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return conv, nil
}

func (r *implRepository) ListConversations(ctx context.Context, mobile string) ([]model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM chat_conversations
		WHERE user_mobile = $1 ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, mobile)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	var convs []model.Conversation
	for rows.Next() {
		var conv model.Conversation
		if err := rows.Scan(&conv.ID, &conv.UserMobile, &conv.Title,
			&conv.CreatedAt, &conv.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListConversations"), err)
			return nil, repo.ErrFailedToGet
		}
		convs = append(convs, conv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToGet
	}
	return convs, nil
}

func (r *implRepository) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM chat_messages
		WHERE conversation_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.MessageType, &m.Content,
			pq.Array(&m.FileURLs), pq.Array(&m.FileNames), &m.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToGet
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToGet
	}
	return msgs, nil
}

func (r *implRepository) InsertMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO chat_messages (id, conversation_id, message_type, content, file_urls, file_names, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(ctx, query, msg.ID, msg.ConversationID, msg.MessageType,
		msg.Content, pq.Array(msg.FileURLs), pq.Array(msg.FileNames), msg.CreatedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertMessage"), err)
		return model.Message{}, repo.ErrFailedToCreate
	}
	return msg, nil
}

func (r *implRepository) TouchConversation(ctx context.Context, id, title string) error {
	query := `UPDATE chat_conversations SET title = $1, updated_at = $2 WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, title, time.Now().UTC(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchConversation"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
