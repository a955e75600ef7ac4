package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type UserRepo interface {
	FindByCredentials(ctx context.Context, login, password string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	ListManagers(ctx context.Context) ([]User, error)
}

type UserRepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

const userColumns = "id, login, password, first_name, last_name, middle_name, specialty, role"

func (r *UserRepoImpl) FindByCredentials(ctx context.Context, login, password string) (User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE login = $1 AND password = $2", userColumns)
	row := r.db.QueryRowContext(ctx, query, login, password)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrInvalidCredentials
		}
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	return u, nil
}

func (r *UserRepoImpl) GetAll(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY id", userColumns)
	return r.queryUsers(ctx, query)
}

func (r *UserRepoImpl) ListManagers(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE role = $1 ORDER BY last_name", userColumns)
	return r.queryUsers(ctx, query, RoleManager)
}

func (r *UserRepoImpl) queryUsers(ctx context.Context, query string, args ...any) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query users: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			err := fmt.Errorf("could not scan user: %w", err)
			log.Error(err)
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Login,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.MiddleName,
		&u.Specialty,
		&u.Role,
	)
	return u, err
}

// MemoryUserRepo is the demo-mode fallback.
type MemoryUserRepo struct {
	users []User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: []User{
		{ID: 1, Login: "ivanov", Password: "manager1", FirstName: "Ivan", LastName: "Ivanov", MiddleName: "Petrovich", Specialty: "Corporate events", Role: RoleManager},
		{ID: 2, Login: "petrova", Password: "manager2", FirstName: "Anna", LastName: "Petrova", MiddleName: "Sergeevna", Specialty: "Conferences", Role: RoleManager},
		{ID: 3, Login: "admin", Password: "admin", FirstName: "Olga", LastName: "Smirnova", MiddleName: "", Specialty: "", Role: RoleAdministrator},
		{ID: 4, Login: "demo", Password: "demo", FirstName: "Demo", LastName: "User", MiddleName: "", Specialty: "", Role: RoleClient},
	}}
}

func (r *MemoryUserRepo) FindByCredentials(ctx context.Context, login, password string) (User, error) {
	for _, u := range r.users {
		if u.Login == login && u.Password == password {
			return u, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

func (r *MemoryUserRepo) GetAll(ctx context.Context) ([]User, error) {
	users := make([]User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *MemoryUserRepo) ListManagers(ctx context.Context) ([]User, error) {
	var managers []User
	for _, u := range r.users {
		if u.Role == RoleManager {
			managers = append(managers, u)
		}
	}
	return managers, nil
}
