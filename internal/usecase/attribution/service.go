package attribution

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

const colleagueNote = "Added automatically: assigned tasks to you"

// AssignedTask is a task another user created about the caller
type AssignedTask struct {
	Task         *entities.Task
	AssignedBy   string
	AssignedByID uint
}

// Service resolves tasks assigned to a user by name matching
type Service struct {
	userRepo   repositories.UserRepository
	personRepo repositories.PersonRepository
	taskRepo   repositories.TaskRepository
	logger     *zap.Logger
}

// NewService creates a new attribution service
func NewService(
	userRepo repositories.UserRepository,
	personRepo repositories.PersonRepository,
	taskRepo repositories.TaskRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		personRepo: personRepo,
		taskRepo:   taskRepo,
		logger:     logger,
	}
}

// AssignedToMe returns tasks created by other users on people named like
// the caller, most urgent first, then newest. Every creator found is added
// to the caller's people as a colleague unless someone with that name is
// already there.
func (s *Service) AssignedToMe(ctx context.Context, userID uint, includeCompleted bool) ([]AssignedTask, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	identities, err := s.personRepo.ListIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	personIDs := MatchPersonIDs(user, identities)
	if len(personIDs) == 0 {
		return []AssignedTask{}, nil
	}

	tasks, err := s.taskRepo.ListForPeopleByOthers(ctx, personIDs, userID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	result := make([]AssignedTask, 0, len(tasks))
	creators := make(map[uint]*entities.User)
	var creatorOrder []uint
	for _, task := range tasks {
		row := AssignedTask{Task: task}
		if task.User != nil {
			row.AssignedBy = task.User.Name()
			row.AssignedByID = task.User.ID
			if _, seen := creators[task.User.ID]; !seen {
				creators[task.User.ID] = task.User
				creatorOrder = append(creatorOrder, task.User.ID)
			}
		}
		result = append(result, row)
	}

	if err := s.ensureColleagues(ctx, userID, creatorOrder, creators); err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Task, result[j].Task
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra > rb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return result, nil
}

// ensureColleagues adds each creator to the caller's people once
func (s *Service) ensureColleagues(ctx context.Context, ownerID uint, order []uint, creators map[uint]*entities.User) error {
	if len(order) == 0 {
		return nil
	}

	people, err := s.personRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to list own people: %w", err)
	}

	for _, id := range order {
		creator := creators[id]
		if hasPersonNamed(people, creator) {
			continue
		}

		owner := ownerID
		note := colleagueNote
		person := &entities.Person{
			UserID:     &owner,
			Name:       creator.Name(),
			Notes:      &note,
			PersonType: entities.PersonTypeColleague,
			IsActive:   true,
		}
		if err := s.personRepo.Create(ctx, person); err != nil {
			return fmt.Errorf("failed to add colleague: %w", err)
		}
		people = append(people, person)

		s.logger.Info("Added colleague from assigned tasks",
			zap.Uint("user_id", ownerID),
			zap.Uint("colleague_user_id", creator.ID),
			zap.Uint("person_id", person.ID),
		)
	}
	return nil
}
