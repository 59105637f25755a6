package domain

import (
	"time"
)

// SysOprLog is one operator action recorded by the audit log.
type SysOprLog struct {
	ID        int64     `json:"id,string"`
	OprName   string    `gorm:"index" json:"opr_name"`
	OprIp     string    `json:"opr_ip"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `gorm:"index" json:"opt_time"`
}

// TableName Specify table name
func (SysOprLog) TableName() string {
	return "sys_opr_log"
}

var Tables = []interface{}{
	&SysOprLog{},
}
