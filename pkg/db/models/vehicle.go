package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

// Vehicle holds the physical attributes a listing advertises.
type Vehicle struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Marca         enums.VehicleBrand `gorm:"column:marca;type:smallint;not null"`
	Modelo        string             `gorm:"column:modelo;not null"`
	Ano           int                `gorm:"column:ano;not null"`
	Cor           enums.VehicleColor `gorm:"column:cor;type:smallint;not null"`
	Combustivel   enums.FuelType     `gorm:"column:combustivel;type:smallint;not null"`
	Quilometragem int                `gorm:"column:quilometragem;not null;default:0"`
	Placa         *string            `gorm:"column:placa"`
	Chassi        *string            `gorm:"column:chassi;uniqueIndex"`
	Foto          *string            `gorm:"column:foto"`
	Observacoes   *string            `gorm:"column:observacoes"`
	CreatedByID   uuid.UUID          `gorm:"column:created_by_id;type:uuid;not null"`
	CreatedBy     *User              `gorm:"foreignKey:CreatedByID"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (v *Vehicle) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (Vehicle) TableName() string {
	return "veiculos"
}
