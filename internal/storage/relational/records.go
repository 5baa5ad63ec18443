package relational

import (
	"time"

	"github.com/torneokills/torneo/internal/model"
)

// Table and column names follow the hosted database schema (torneos,
// jugadores, inscripciones) so an existing database can be reused as is.

type tournamentRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:nombre;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (tournamentRecord) TableName() string { return "torneos" }

type playerRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	FullName   string    `gorm:"column:nombre_completo"`
	GameID     string    `gorm:"column:cod_id"`
	Email      string    `gorm:"column:email"`
	NationalID string    `gorm:"column:cedula"`
	Phone      string    `gorm:"column:telefono"`
	Bank       string    `gorm:"column:banco"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (playerRecord) TableName() string { return "jugadores" }

type enrollmentRecord struct {
	ID              int64            `gorm:"primaryKey;autoIncrement"`
	PlayerID        int64            `gorm:"column:jugador_id;not null;index"`
	Player          playerRecord     `gorm:"foreignKey:PlayerID"`
	TournamentID    int64            `gorm:"column:torneo_id;not null;index"`
	Tournament      tournamentRecord `gorm:"foreignKey:TournamentID"`
	PaymentVerified bool             `gorm:"column:pago_verificado;not null;default:false"`
	Kills           int              `gorm:"column:kills;not null;default:0"`
	CreatedAt       time.Time        `gorm:"autoCreateTime"`
}

func (enrollmentRecord) TableName() string { return "inscripciones" }

func toTournamentRecord(t *model.Tournament) tournamentRecord {
	return tournamentRecord{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func (r tournamentRecord) toModel() model.Tournament {
	return model.Tournament{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

func toPlayerRecord(p *model.Player) playerRecord {
	return playerRecord{
		ID:         p.ID,
		FullName:   p.FullName,
		GameID:     p.GameID,
		Email:      p.Email,
		NationalID: p.NationalID,
		Phone:      p.Phone,
		Bank:       p.Bank,
		CreatedAt:  p.CreatedAt,
	}
}

func (r playerRecord) toModel() model.Player {
	return model.Player{
		ID:         r.ID,
		FullName:   r.FullName,
		GameID:     r.GameID,
		Email:      r.Email,
		NationalID: r.NationalID,
		Phone:      r.Phone,
		Bank:       r.Bank,
		CreatedAt:  r.CreatedAt,
	}
}

func toEnrollmentRecord(e *model.Enrollment) enrollmentRecord {
	return enrollmentRecord{
		ID:              e.ID,
		PlayerID:        e.PlayerID,
		TournamentID:    e.TournamentID,
		PaymentVerified: e.PaymentVerified,
		Kills:           e.Kills,
		CreatedAt:       e.CreatedAt,
	}
}

func (r enrollmentRecord) toModel() model.Enrollment {
	return model.Enrollment{
		ID:              r.ID,
		PlayerID:        r.PlayerID,
		TournamentID:    r.TournamentID,
		PaymentVerified: r.PaymentVerified,
		Kills:           r.Kills,
		CreatedAt:       r.CreatedAt,
	}
}

func (r enrollmentRecord) toDetail() model.EnrollmentDetail {
	return model.EnrollmentDetail{
		Enrollment: r.toModel(),
		Player:     r.Player.toModel(),
		Tournament: r.Tournament.toModel(),
	}
}
