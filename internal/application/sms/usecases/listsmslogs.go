package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/application/sms/dto"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/shared/logger"
)

type ListSMSLogsUseCase struct {
	smsLogRepo sms.LogRepository
	logger     logger.Interface
}

func NewListSMSLogsUseCase(
	smsLogRepo sms.LogRepository,
	logger logger.Interface,
) *ListSMSLogsUseCase {
	return &ListSMSLogsUseCase{
		smsLogRepo: smsLogRepo,
		logger:     logger,
	}
}

// Execute returns the SMS audit log, newest first.
func (uc *ListSMSLogsUseCase) Execute(ctx context.Context, limit, offset int) (*dto.SMSLogListDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, total, err := uc.smsLogRepo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list sms logs", "error", err)
		return nil, fmt.Errorf("failed to list sms logs: %w", err)
	}

	return &dto.SMSLogListDTO{
		Logs:  dto.ToSMSLogDTOList(logs),
		Total: total,
	}, nil
}
