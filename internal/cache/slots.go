package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AgendariaApp/salon-scheduler/internal/dto"
)

// TTL curto: a listagem é consultiva e sempre revalidada no commit.
const slotTTL = 60 * time.Second

const slotKeyPrefix = "slots:"

// SlotCache guarda o resultado de uma listagem de horários do dia.
// Falhas de cache nunca quebram a requisição: miss e erro são o mesmo
// resultado para o chamador.
type SlotCache interface {
	GetDay(ctx context.Context, salonID uint, serviceName, date string) ([]dto.EmployeeAgendaDTO, bool)
	SetDay(ctx context.Context, salonID uint, serviceName, date string, agenda []dto.EmployeeAgendaDTO)
	InvalidateDay(ctx context.Context, salonID uint, date string)
}

type RedisSlotCache struct {
	client *redis.Client
}

func NewRedisSlotCache(client *redis.Client) *RedisSlotCache {
	return &RedisSlotCache{client: client}
}

func slotKey(salonID uint, serviceName, date string) string {
	return fmt.Sprintf("%s%d:%s:%s", slotKeyPrefix, salonID, strings.ToLower(serviceName), date)
}

func (c *RedisSlotCache) GetDay(
	ctx context.Context,
	salonID uint,
	serviceName, date string,
) ([]dto.EmployeeAgendaDTO, bool) {

	val, err := c.client.Get(ctx, slotKey(salonID, serviceName, date)).Result()
	if err != nil {
		return nil, false
	}

	var agenda []dto.EmployeeAgendaDTO
	if err := json.Unmarshal([]byte(val), &agenda); err != nil {
		return nil, false
	}

	return agenda, true
}

func (c *RedisSlotCache) SetDay(
	ctx context.Context,
	salonID uint,
	serviceName, date string,
	agenda []dto.EmployeeAgendaDTO,
) {

	data, err := json.Marshal(agenda)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, slotKey(salonID, serviceName, date), data, slotTTL).Err()
}

// InvalidateDay derruba todas as listagens do salão naquela data,
// qualquer que seja o serviço consultado.
func (c *RedisSlotCache) InvalidateDay(
	ctx context.Context,
	salonID uint,
	date string,
) {

	pattern := fmt.Sprintf("%s%d:*:%s", slotKeyPrefix, salonID, date)

	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	_ = c.client.Del(ctx, keys...).Err()
}

var _ SlotCache = (*RedisSlotCache)(nil)
