package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const adminBootstrapID = 1

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyUsed
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Role = entity.Role(userM.Role)
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByClerkID retrieves a user by identity provider ID. It always reads from
// the primary: sign-in may have created the row a moment ago.
func (repo *userRepository) FindByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("clerk_id = ?", clerkID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by clerk id")
	}

	return toUserDomain(&userM), nil
}

// List returns a page of users matching the filter.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	q := searchAny(repo.db.WithContext(ctx).Model(&model.UserModel{}), filter.Search, "name", "email", "dni")
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := sortAndPage(q, filter.ListParams, userSortColumns, "created_at").Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Update saves the profile fields, email and role of a user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(userM).
		Select("email", "name", "role", "phone", "dni", "address").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyUsed
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// ClaimAdminBootstrap inserts the bootstrap row with its fixed key. Only the
// first insert affects a row; every later attempt is a no-op.
func (repo *userRepository) ClaimAdminBootstrap(ctx context.Context, userID uint) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AdminBootstrapModel{
			ID:     adminBootstrapID,
			UserID: userID,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim admin bootstrap")
	}

	return result.RowsAffected == 1, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		ClerkID:   data.ClerkID,
		Email:     data.Email,
		Name:      data.Name,
		Role:      entity.Role(data.Role),
		Phone:     data.Phone,
		DNI:       data.DNI,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:        data.ID,
		ClerkID:   data.ClerkID,
		Email:     data.Email,
		Name:      data.Name,
		Role:      role.String(),
		Phone:     data.Phone,
		DNI:       data.DNI,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
