package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

// Listing is a published ad offering a vehicle for sale.
type Listing struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UsuarioID       uuid.UUID           `gorm:"column:usuario_id;type:uuid;not null;index"`
	Usuario         *User               `gorm:"foreignKey:UsuarioID"`
	VeiculoID       uuid.UUID           `gorm:"column:veiculo_id;type:uuid;not null;index"`
	Veiculo         *Vehicle            `gorm:"foreignKey:VeiculoID"`
	Descricao       string              `gorm:"column:descricao;not null"`
	Preco           decimal.Decimal     `gorm:"column:preco;type:numeric(10,2);not null"`
	AceitaTroca     bool                `gorm:"column:aceita_troca;not null;default:false"`
	TelefoneContato *string             `gorm:"column:telefone_contato"`
	Status          enums.ListingStatus `gorm:"column:status;not null;default:ativo;index"`
	Destaque        bool                `gorm:"column:destaque;not null;default:false"`
	Visualizacoes   int                 `gorm:"column:visualizacoes;not null;default:0"`
	DataExpiracao   *time.Time          `gorm:"column:data_expiracao;type:date"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (l *Listing) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (Listing) TableName() string {
	return "anuncios"
}

// DiasAtivo returns whole days elapsed since publication.
func (l *Listing) DiasAtivo(now time.Time) int {
	if l.CreatedAt.IsZero() {
		return 0
	}
	days := int(now.Sub(l.CreatedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsExpiredAt reports whether an active listing has passed its expiry date.
func (l *Listing) IsExpiredAt(today time.Time) bool {
	if l.Status != enums.ListingStatusActive || l.DataExpiracao == nil {
		return false
	}
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return l.DataExpiracao.Before(midnight)
}
