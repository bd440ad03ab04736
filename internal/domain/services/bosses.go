package services

import (
	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// BossLoyalty is the combined loyalty of a boss's sidekicks.
type BossLoyalty struct {
	BossName        string `yaml:"bossName" json:"bossName"`
	SidekickLoyalty int    `yaml:"sidekickLoyalty" json:"sidekickLoyalty"`
}

// BossLoyalties sums sidekick loyalty per boss, in boss order. A boss with
// no sidekicks reports zero.
func BossLoyalties(bosses []entities.Boss, sidekicks []entities.Sidekick) []BossLoyalty {
	byBoss := query.GroupBy(sidekicks, func(s entities.Sidekick) string { return s.Boss })
	return query.Map(bosses, func(b entities.Boss) BossLoyalty {
		loyal, _ := byBoss.Get(b.Name)
		return BossLoyalty{
			BossName:        b.Name,
			SidekickLoyalty: query.Sum(loyal, func(s entities.Sidekick) int { return s.LoyaltyToBoss }),
		}
	})
}
