package models

// UserRole defines the access level of a club user
type UserRole string

const (
	UserRoleGeneralAdmin UserRole = "Administrador Geral"
	UserRoleAdmin        UserRole = "Administrador"
	UserRoleCaptain      UserRole = "Capitão de time"
	UserRolePlayer       UserRole = "Jogador"
)

// TournamentStatus defines the board a tournament is shown on
type TournamentStatus string

const (
	TournamentStatusOpen     TournamentStatus = "campeonatos"
	TournamentStatusSignup   TournamentStatus = "inscricoes"
	TournamentStatusFinished TournamentStatus = "passados"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleGeneralAdmin, UserRoleAdmin, UserRoleCaptain, UserRolePlayer:
		return true
	}
	return false
}

// IsAdmin reports whether the role can manage club data
func (r UserRole) IsAdmin() bool {
	return r == UserRoleGeneralAdmin || r == UserRoleAdmin
}

// IsValid checks if the TournamentStatus is valid
func (s TournamentStatus) IsValid() bool {
	switch s {
	case TournamentStatusOpen, TournamentStatusSignup, TournamentStatusFinished:
		return true
	}
	return false
}
