package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestIngestionImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ref := domain.RepositoryRef{Owner: "acme", Name: "widgets"}
	dbErr := errors.New("database error")

	type mocksSet struct {
		uow    *domain_mocks.MockUnitOfWork
		jobs   *domain_mocks.MockIngestionJobRepository
		outbox *domain_mocks.MockOutboxRepository
		loader *domain_mocks.MockRepositoryLoader
		tp     *domain_mocks.MockCurrentTimeProvider
	}

	expectTransaction := func(m mocksSet) {
		m.uow.EXPECT().IngestionJob().Return(m.jobs).Maybe()
		m.uow.EXPECT().Outbox().Return(m.outbox).Maybe()
		m.uow.EXPECT().
			Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
				return fn(m.uow)
			})
	}

	tests := map[string]struct {
		projectID       string
		repositoryURL   string
		credential      string
		setExpectations func(m mocksSet)
		expectedErr     error
		assertJob       func(t *testing.T, job domain.IngestionJob)
	}{
		"success": {
			projectID:     "project-1",
			repositoryURL: "https://github.com/acme/widgets.git",
			credential:    "user-token",
			setExpectations: func(m mocksSet) {
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "user-token").Return("develop", nil)
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "").Return("develop", nil)
				m.tp.EXPECT().Now().Return(fixedTime)
				expectTransaction(m)

				var jobID uuid.UUID
				m.jobs.EXPECT().CreateJob(mock.Anything, mock.MatchedBy(func(j domain.IngestionJob) bool {
					jobID = j.ID
					return j.ProjectID == "project-1" &&
						j.RepositoryURL == "https://github.com/acme/widgets" &&
						j.Branch == "develop" &&
						j.Status == domain.IngestionJobStatus_PENDING &&
						j.CreatedAt.Equal(fixedTime)
				})).Return(nil)
				m.outbox.EXPECT().CreateIngestionEvent(mock.Anything, mock.MatchedBy(func(e domain.IngestionRequestedEvent) bool {
					return e.JobID == jobID &&
						e.Type == domain.EventType_INGESTION_REQUESTED &&
						e.ProjectID == "project-1" &&
						e.Branch == "develop" &&
						e.RepositoryURL == "https://github.com/acme/widgets"
				})).Return(nil)
			},
			assertJob: func(t *testing.T, job domain.IngestionJob) {
				assert.NotEqual(t, uuid.Nil, job.ID)
				assert.Equal(t, domain.IngestionJobStatus_PENDING, job.Status)
				assert.Equal(t, "develop", job.Branch)
				assert.Equal(t, fixedTime, job.CreatedAt)
			},
		},
		"empty-project-id": {
			projectID:       "  ",
			repositoryURL:   "https://github.com/acme/widgets",
			setExpectations: func(m mocksSet) {},
			expectedErr:     domain.NewValidationErr("project id cannot be empty"),
		},
		"malformed-url": {
			projectID:       "project-1",
			repositoryURL:   "",
			setExpectations: func(m mocksSet) {},
			expectedErr:     domain.NewValidationErr("repository url cannot be empty"),
		},
		"repository-not-reachable": {
			projectID:     "project-1",
			repositoryURL: "https://github.com/acme/widgets",
			credential:    "user-token",
			setExpectations: func(m mocksSet) {
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "user-token").
					Return("", domain.NewNotFoundErr("repository acme/widgets not found"))
			},
			expectedErr: domain.NewNotFoundErr("repository acme/widgets not found"),
		},
		"service-credential-only": {
			projectID:     "project-1",
			repositoryURL: "https://github.com/acme/widgets",
			setExpectations: func(m mocksSet) {
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "").Return("main", nil).Once()
				m.tp.EXPECT().Now().Return(fixedTime)
				expectTransaction(m)
				m.jobs.EXPECT().CreateJob(mock.Anything, mock.Anything).Return(nil)
				m.outbox.EXPECT().CreateIngestionEvent(mock.Anything, mock.Anything).Return(nil)
			},
			assertJob: func(t *testing.T, job domain.IngestionJob) {
				assert.Equal(t, "main", job.Branch)
			},
		},
		"private-repository-hidden-from-service": {
			projectID:     "project-1",
			repositoryURL: "https://github.com/acme/widgets",
			credential:    "user-token",
			setExpectations: func(m mocksSet) {
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "user-token").Return("main", nil)
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "").
					Return("", domain.NewNotFoundErr("repository acme/widgets not found or not accessible"))
			},
			expectedErr: domain.NewValidationErr("repository acme/widgets is not accessible to the indexing service"),
		},
		"service-check-rate-limited": {
			projectID:     "project-1",
			repositoryURL: "https://github.com/acme/widgets",
			credential:    "user-token",
			setExpectations: func(m mocksSet) {
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "user-token").Return("main", nil)
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "").
					Return("", domain.NewRateLimitedErr("GitHub API rate limit exceeded"))
			},
			expectedErr: domain.NewRateLimitedErr("GitHub API rate limit exceeded"),
		},
		"outbox-error-rolls-back": {
			projectID:     "project-1",
			repositoryURL: "https://github.com/acme/widgets",
			credential:    "user-token",
			setExpectations: func(m mocksSet) {
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "user-token").Return("main", nil)
				m.loader.EXPECT().ResolveDefaultBranch(mock.Anything, ref, "").Return("main", nil)
				m.tp.EXPECT().Now().Return(fixedTime)
				expectTransaction(m)
				m.jobs.EXPECT().CreateJob(mock.Anything, mock.Anything).Return(nil)
				m.outbox.EXPECT().CreateIngestionEvent(mock.Anything, mock.Anything).Return(dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocksSet{
				uow:    domain_mocks.NewMockUnitOfWork(t),
				jobs:   domain_mocks.NewMockIngestionJobRepository(t),
				outbox: domain_mocks.NewMockOutboxRepository(t),
				loader: domain_mocks.NewMockRepositoryLoader(t),
				tp:     domain_mocks.NewMockCurrentTimeProvider(t),
			}
			tt.setExpectations(m)

			ri := NewRequestIngestionImpl(m.uow, m.loader, m.tp)
			job, err := ri.Execute(context.Background(), tt.projectID, tt.repositoryURL, tt.credential)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Equal(t, domain.IngestionJob{}, job)
				return
			}
			require.NoError(t, err)
			tt.assertJob(t, job)
		})
	}
}

func TestInitRequestIngestion_Initialize(t *testing.T) {
	i := InitRequestIngestion{}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[RequestIngestion]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
