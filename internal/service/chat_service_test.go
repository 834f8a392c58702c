package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/llm"
	"pharmacademy/internal/model"
)

func TestSendStartsChat(t *testing.T) {
	completer := &fakeCompleter{reply: "Warfarin is a vitamin K antagonist."}
	chats := newFakeChatRepo()
	svc := NewChatService(completer, "chat-model", chats)
	userID := primitive.NewObjectID()
	msg := strings.Repeat("x", 60)

	reply, err := svc.Send(context.Background(), userID, model.SendMessageRequest{Message: msg})

	require.NoError(t, err)
	assert.Equal(t, "Warfarin is a vitamin K antagonist.", reply.Message)
	assert.Equal(t, strings.Repeat("x", 50)+"...", reply.Chat.Title)
	require.Len(t, reply.Chat.Messages, 2)
	assert.Equal(t, model.ChatRoleUser, reply.Chat.Messages[0].Role)
	assert.Equal(t, model.ChatRoleAssistant, reply.Chat.Messages[1].Role)
	assert.Contains(t, chats.chats, reply.Chat.ID)
	assert.Equal(t, reply.Chat.ID.Hex(), reply.ChatID)

	assert.Equal(t, llm.Params{Model: "chat-model", Temperature: 0.7, MaxTokens: 1024}, completer.params)
	require.Len(t, completer.messages, 2)
	assert.Equal(t, llm.RoleSystem, completer.messages[0].Role)
	assert.Equal(t, llm.User(msg), completer.messages[1])
}

func TestSendContinuesChat(t *testing.T) {
	completer := &fakeCompleter{reply: "first answer"}
	chats := newFakeChatRepo()
	svc := NewChatService(completer, "m", chats)
	userID := primitive.NewObjectID()
	ctx := context.Background()

	first, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "What is warfarin?"})
	require.NoError(t, err)

	completer.reply = "second answer"
	second, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "And its antidote?", ChatID: first.ChatID})
	require.NoError(t, err)

	assert.Equal(t, first.ChatID, second.ChatID)
	assert.Equal(t, 1, chats.appended)
	require.Len(t, chats.chats[first.Chat.ID].Messages, 4)
	assert.Equal(t, "What is warfarin?...", chats.chats[first.Chat.ID].Title)

	// system prompt plus the two stored turns plus the new message
	require.Len(t, completer.messages, 4)
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "first answer"}, completer.messages[2])
	assert.Equal(t, llm.User("And its antidote?"), completer.messages[3])
}

func TestSendEmptyReply(t *testing.T) {
	svc := NewChatService(&fakeCompleter{reply: "  "}, "m", newFakeChatRepo())

	reply, err := svc.Send(context.Background(), primitive.NewObjectID(), model.SendMessageRequest{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, noReplyMessage, reply.Message)
}

func TestSendFailures(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("EmptyMessage", func(t *testing.T) {
		completer := &fakeCompleter{reply: "x"}
		svc := NewChatService(completer, "m", newFakeChatRepo())
		_, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, completer.calls)
	})

	t.Run("UnknownChat", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{reply: "x"}, "m", newFakeChatRepo())
		_, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "hi", ChatID: primitive.NewObjectID().Hex()})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("OtherUsersChat", func(t *testing.T) {
		chats := newFakeChatRepo()
		svc := NewChatService(&fakeCompleter{reply: "x"}, "m", chats)
		started, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "hi"})
		require.NoError(t, err)

		_, err = svc.Send(ctx, primitive.NewObjectID(), model.SendMessageRequest{Message: "hi", ChatID: started.ChatID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ModelDownStoresNothing", func(t *testing.T) {
		chats := newFakeChatRepo()
		svc := NewChatService(&fakeCompleter{err: errors.New("timeout")}, "m", chats)
		_, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "hi"})
		assert.Error(t, err)
		assert.Empty(t, chats.chats)
	})
}

func TestChatDelete(t *testing.T) {
	chats := newFakeChatRepo()
	svc := NewChatService(&fakeCompleter{reply: "ok"}, "m", chats)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	started, err := svc.Send(ctx, userID, model.SendMessageRequest{Message: "hi"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, primitive.NewObjectID(), started.ChatID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, userID, "nope"), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, userID, started.ChatID))
	assert.ErrorIs(t, svc.Delete(ctx, userID, started.ChatID), ErrNotFound)

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
