package service

import (
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
)

type Instance struct {
	Birthday   *birthdayService
	Reconciler *reconciler
}

func NewInstance(dm contract.DataManager, platform contract.ChatPlatform, cfg Config) *Instance {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Instance{
		Birthday:   newBirthday(dm, platform, cfg),
		Reconciler: newReconciler(dm, platform, cfg),
	}
}
