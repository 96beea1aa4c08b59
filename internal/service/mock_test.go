package service

import (
	"context"

	"github.com/google/uuid"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	UpsertFunc        func(ctx context.Context, user *domain.User) error
	UpsertProfileFunc func(ctx context.Context, user *domain.User) error
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindAllFunc       func(ctx context.Context) ([]*domain.User, error)
	UpdateFunc        func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpsertProfile(ctx context.Context, user *domain.User) error {
	if m.UpsertProfileFunc != nil {
		return m.UpsertProfileFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc      func(ctx context.Context, board *domain.Board) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByOwnerFunc func(ctx context.Context, ownerEmail string) ([]*domain.Board, error)
	UpdateFunc      func(ctx context.Context, board *domain.Board) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*domain.Board, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerEmail)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	CreateFunc       func(ctx context.Context, card *domain.Card) error
	FindByIDFunc     func(ctx context.Context, boardID, id uuid.UUID) (*domain.Card, error)
	FindByBoardFunc  func(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error)
	UpdateFunc       func(ctx context.Context, card *domain.Card) error
	DeleteFunc       func(ctx context.Context, boardID, id uuid.UUID) error
	FindOrphanedFunc func(ctx context.Context) ([]*domain.Card, error)
	DeleteByIDsFunc  func(ctx context.Context, ids []uuid.UUID) error
}

func (m *MockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) FindByID(ctx context.Context, boardID, id uuid.UUID) (*domain.Card, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, boardID, id)
	}
	return nil, nil
}

func (m *MockCardRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockCardRepository) Update(ctx context.Context, card *domain.Card) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) Delete(ctx context.Context, boardID, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID, id)
	}
	return nil
}

func (m *MockCardRepository) FindOrphaned(ctx context.Context) ([]*domain.Card, error) {
	if m.FindOrphanedFunc != nil {
		return m.FindOrphanedFunc(ctx)
	}
	return nil, nil
}

func (m *MockCardRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteByIDsFunc != nil {
		return m.DeleteByIDsFunc(ctx, ids)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *domain.Task) error
	FindByIDFunc        func(ctx context.Context, cardID, id uuid.UUID) (*domain.Task, error)
	FindByCardFunc      func(ctx context.Context, cardID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc          func(ctx context.Context, task *domain.Task) error
	DeleteFunc          func(ctx context.Context, cardID, id uuid.UUID) error
	FindOrphanedFunc    func(ctx context.Context) ([]*domain.Task, error)
	DeleteByCardIDsFunc func(ctx context.Context, cardIDs []uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, cardID, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, cardID, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByCardFunc != nil {
		return m.FindByCardFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, cardID, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, cardID, id)
	}
	return nil
}

func (m *MockTaskRepository) FindOrphaned(ctx context.Context) ([]*domain.Task, error) {
	if m.FindOrphanedFunc != nil {
		return m.FindOrphanedFunc(ctx)
	}
	return nil, nil
}

func (m *MockTaskRepository) DeleteByCardIDs(ctx context.Context, cardIDs []uuid.UUID) error {
	if m.DeleteByCardIDsFunc != nil {
		return m.DeleteByCardIDsFunc(ctx, cardIDs)
	}
	return nil
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository
type MockAssignmentRepository struct {
	UpsertFunc     func(ctx context.Context, assignment *domain.Assignment) error
	FindByTaskFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Assignment, error)
	DeleteFunc     func(ctx context.Context, taskID uuid.UUID, memberEmail string) error
}

func (m *MockAssignmentRepository) Upsert(ctx context.Context, assignment *domain.Assignment) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, assignment)
	}
	return nil
}

func (m *MockAssignmentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Assignment, error) {
	if m.FindByTaskFunc != nil {
		return m.FindByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, taskID uuid.UUID, memberEmail string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, taskID, memberEmail)
	}
	return nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc     func(ctx context.Context, attachment *domain.GithubAttachment) error
	FindByTaskFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.GithubAttachment, error)
	DeleteFunc     func(ctx context.Context, taskID, id uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.GithubAttachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.GithubAttachment, error) {
	if m.FindByTaskFunc != nil {
		return m.FindByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, taskID, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, taskID, id)
	}
	return nil
}

// MockInviteRepository is a mock implementation of InviteRepository
type MockInviteRepository struct {
	CreateFunc         func(ctx context.Context, invite *domain.Invite) error
	DeleteOrphanedFunc func(ctx context.Context) (int64, error)
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invite)
	}
	return nil
}

func (m *MockInviteRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	if m.DeleteOrphanedFunc != nil {
		return m.DeleteOrphanedFunc(ctx)
	}
	return 0, nil
}

// publishedEvent records one Publisher.Publish call
type publishedEvent struct {
	Room          string
	Event         string
	Data          interface{}
	CorrelationID string
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	Published []publishedEvent
}

func (m *MockPublisher) Publish(ctx context.Context, room, event string, data interface{}, correlationID string) {
	m.Published = append(m.Published, publishedEvent{
		Room:          room,
		Event:         event,
		Data:          data,
		CorrelationID: correlationID,
	})
}

// MockSender is a mock implementation of mailer.Sender
type MockSender struct {
	SendVerificationCodeFunc func(to, code string) error
	SendBoardInviteFunc      func(to, boardName, invitedBy string) error
}

func (m *MockSender) SendVerificationCode(to, code string) error {
	if m.SendVerificationCodeFunc != nil {
		return m.SendVerificationCodeFunc(to, code)
	}
	return nil
}

func (m *MockSender) SendBoardInvite(to, boardName, invitedBy string) error {
	if m.SendBoardInviteFunc != nil {
		return m.SendBoardInviteFunc(to, boardName, invitedBy)
	}
	return nil
}

// MockGithubClient is a mock implementation of client.GithubClient
type MockGithubClient struct {
	GetRepositoryInfoFunc func(ctx context.Context, owner, repo string) (*client.RepoInfo, error)
	ExchangeOAuthCodeFunc func(ctx context.Context, code string) (string, error)
	FetchUserFunc         func(ctx context.Context, accessToken string) (*client.GithubUser, error)
}

func (m *MockGithubClient) GetRepositoryInfo(ctx context.Context, owner, repo string) (*client.RepoInfo, error) {
	if m.GetRepositoryInfoFunc != nil {
		return m.GetRepositoryInfoFunc(ctx, owner, repo)
	}
	return nil, nil
}

func (m *MockGithubClient) ExchangeOAuthCode(ctx context.Context, code string) (string, error) {
	if m.ExchangeOAuthCodeFunc != nil {
		return m.ExchangeOAuthCodeFunc(ctx, code)
	}
	return "", nil
}

func (m *MockGithubClient) FetchUser(ctx context.Context, accessToken string) (*client.GithubUser, error) {
	if m.FetchUserFunc != nil {
		return m.FetchUserFunc(ctx, accessToken)
	}
	return nil, nil
}
