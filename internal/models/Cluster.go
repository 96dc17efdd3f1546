package models

import "gorm.io/gorm"

// Cluster groups local-government areas under one administrative owner.
// AdminID is nullable: a cluster has at most one owning admin at a time.
type Cluster struct {
	gorm.Model
	ClusterName string `json:"cluster_name" gorm:"unique" binding:"required"`
	LGA         string `json:"lga" binding:"required"`
	Description string `json:"description"`
	AdminID     *uint  `json:"admin_id"`

	Admin *Admin `gorm:"foreignKey:AdminID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"admin,omitempty"`
}
