package usecase

import "time"

// id採番と時刻取得はテストで差し替えられるようにportにする。
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}
