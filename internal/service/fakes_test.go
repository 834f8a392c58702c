package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/llm"
	"pharmacademy/internal/model"
	"pharmacademy/internal/repository"
	"pharmacademy/internal/storage"
)

type fakeCompleter struct {
	reply    string
	err      error
	calls    int
	messages []llm.Message
	params   llm.Params
}

func (f *fakeCompleter) Complete(_ context.Context, messages []llm.Message, params llm.Params) (string, error) {
	f.calls++
	f.messages = messages
	f.params = params
	return f.reply, f.err
}

type fakeQuizRepo struct {
	quizzes map[primitive.ObjectID]*model.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: map[primitive.ObjectID]*model.Quiz{}}
}

func (r *fakeQuizRepo) Create(_ context.Context, quiz *model.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Quiz, error) {
	return r.quizzes[id], nil
}

type fakeResultRepo struct {
	results []*model.QuizResult
}

func (r *fakeResultRepo) Create(_ context.Context, result *model.QuizResult) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	r.results = append(r.results, result)
	return nil
}

func (r *fakeResultRepo) Recent(_ context.Context, userID primitive.ObjectID, limit int) ([]*model.QuizResult, error) {
	var out []*model.QuizResult
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].User == userID {
			out = append(out, r.results[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeResultRepo) Summary(_ context.Context, userID primitive.ObjectID) (*repository.ResultSummary, error) {
	s := &repository.ResultSummary{}
	for _, res := range r.results {
		if res.User == userID {
			s.Count++
			s.TotalScore += res.Score
		}
	}
	return s, nil
}

type fakeUserRepo struct {
	mu           sync.Mutex
	users        map[primitive.ObjectID]*model.User
	incrementErr error
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, update model.ProfileUpdate) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[id]
	if u == nil {
		return nil, nil
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.University != "" {
		u.University = update.University
	}
	if update.Role != "" {
		u.Role = update.Role
	}
	return u, nil
}

func (r *fakeUserRepo) SetAvatar(_ context.Context, id primitive.ObjectID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u := r.users[id]; u != nil {
		u.Avatar = url
	}
	return nil
}

func (r *fakeUserRepo) IncrementStats(_ context.Context, id primitive.ObjectID, delta repository.StatsDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.incrementErr != nil {
		return r.incrementErr
	}
	u := r.users[id]
	if u == nil {
		return nil
	}
	u.Stats.QuizzesCompleted += delta.QuizzesCompleted
	u.Stats.PapersSummarized += delta.PapersSummarized
	u.Stats.TotalScore += delta.TotalScore
	return nil
}

func (r *fakeUserRepo) TopByScore(_ context.Context, limit int) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Stats.TotalScore > users[j].Stats.TotalScore })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type fakePaperRepo struct {
	papers map[primitive.ObjectID]*model.Paper
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{papers: map[primitive.ObjectID]*model.Paper{}}
}

func (r *fakePaperRepo) Create(_ context.Context, paper *model.Paper) error {
	if paper.ID.IsZero() {
		paper.ID = primitive.NewObjectID()
	}
	r.papers[paper.ID] = paper
	return nil
}

func (r *fakePaperRepo) GetForUser(_ context.Context, id, userID primitive.ObjectID) (*model.Paper, error) {
	p := r.papers[id]
	if p == nil || p.User != userID {
		return nil, nil
	}
	return p, nil
}

func (r *fakePaperRepo) ListForUser(_ context.Context, userID primitive.ObjectID) ([]*model.Paper, error) {
	var out []*model.Paper
	for _, p := range r.papers {
		if p.User == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaperRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.papers, id)
	return nil
}

type fakeChatRepo struct {
	chats    map[primitive.ObjectID]*model.Chat
	appended int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: map[primitive.ObjectID]*model.Chat{}}
}

func (r *fakeChatRepo) Create(_ context.Context, chat *model.Chat) error {
	if chat.ID.IsZero() {
		chat.ID = primitive.NewObjectID()
	}
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetForUser(_ context.Context, id, userID primitive.ObjectID) (*model.Chat, error) {
	c := r.chats[id]
	if c == nil || c.User != userID {
		return nil, nil
	}
	copied := *c
	copied.Messages = append([]model.ChatMessage(nil), c.Messages...)
	return &copied, nil
}

func (r *fakeChatRepo) ListForUser(_ context.Context, userID primitive.ObjectID) ([]*model.Chat, error) {
	var out []*model.Chat
	for _, c := range r.chats {
		if c.User == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) Append(_ context.Context, chat *model.Chat, messages ...model.ChatMessage) error {
	stored := r.chats[chat.ID]
	if stored == nil {
		return errors.New("no such chat")
	}
	stored.Messages = append(stored.Messages, messages...)
	stored.LastMessage = chat.LastMessage
	r.appended++
	return nil
}

func (r *fakeChatRepo) DeleteForUser(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	c := r.chats[id]
	if c == nil || c.User != userID {
		return false, nil
	}
	delete(r.chats, id)
	return true, nil
}

type fakeBlobStore struct {
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
	lastOpts  storage.UploadOptions
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{uploads: map[string][]byte{}}
}

func (s *fakeBlobStore) Upload(_ context.Context, r io.Reader, opts storage.UploadOptions) (*storage.Object, error) {
	s.lastOpts = opts
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	id := opts.Folder + "/" + primitive.NewObjectID().Hex()
	s.uploads[id] = data
	return &storage.Object{URL: "https://cdn.test/" + id, PublicID: id}, nil
}

func (s *fakeBlobStore) Delete(_ context.Context, publicID, _ string) error {
	delete(s.uploads, publicID)
	s.deleted = append(s.deleted, publicID)
	return nil
}

type fakeExtractor struct {
	text  string
	err   error
	paths []string
}

func (e *fakeExtractor) ExtractText(path string) (string, error) {
	e.paths = append(e.paths, path)
	return e.text, e.err
}

type broadcast struct {
	msgType string
	payload interface{}
}

type fakeBroadcaster struct {
	sent []broadcast
}

func (b *fakeBroadcaster) Broadcast(msgType string, payload interface{}) {
	b.sent = append(b.sent, broadcast{msgType: msgType, payload: payload})
}
