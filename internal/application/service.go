package application

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/connect0459/babysitter-pay/internal/domain/entities"
	"github.com/connect0459/babysitter-pay/internal/domain/repositories"
	"github.com/connect0459/babysitter-pay/internal/domain/services"
	"github.com/connect0459/babysitter-pay/internal/logger"
)

// ErrInvalidShift は勤務時間外または順序が不正な依頼を表す
var ErrInvalidShift = errors.New("invalid shift")

// PayService は報酬見積もりのユースケースを提供する
type PayService struct {
	families   repositories.FamilyRepository
	calculator *services.Calculator
	log        logger.Logger
}

// NewPayService は新しいPayServiceを作成する
func NewPayService(
	families repositories.FamilyRepository,
	calculator *services.Calculator,
	log logger.Logger,
) *PayService {
	return &PayService{
		families:   families,
		calculator: calculator,
		log:        log,
	}
}

// Validation は依頼の妥当性チェックの結果を表す
type Validation struct {
	WithinWorkingHours bool
	StartBeforeEnd     bool
	Valid              bool
}

// Validate は依頼の妥当性をチェックする
//
// 引数:
//   - start: 開始時刻
//   - end: 終了時刻
//
// 戻り値:
//   - チェック結果
//   - 範囲外の時刻の場合はエラー
func (s *PayService) Validate(start, end int) (*Validation, error) {
	job, err := entities.NewBabysittingJob(start, end)
	if err != nil {
		return nil, err
	}

	return &Validation{
		WithinWorkingHours: job.TimesWithinWorkingHours(),
		StartBeforeEnd:     job.StartTimeIsBeforeEndTime(),
		Valid:              job.IsValid(),
	}, nil
}

// Quote は家庭の時給表で依頼の報酬を見積もる
//
// 引数:
//   - familyName: 家庭名
//   - start: 開始時刻
//   - end: 終了時刻
//   - strict: true の場合、無効な依頼は ErrInvalidShift を返す
//
// 戻り値:
//   - 見積もり
//   - エラー
func (s *PayService) Quote(familyName string, start, end int, strict bool) (*services.Quote, error) {
	family, err := s.families.FindByName(familyName)
	if err != nil {
		return nil, err
	}

	job, err := entities.NewBabysittingJob(start, end)
	if err != nil {
		return nil, err
	}

	if !job.IsValid() {
		if strict {
			return nil, fmt.Errorf("%w: %s-%s", ErrInvalidShift,
				services.FormatHour(job.Start()), services.FormatHour(job.End()))
		}
		s.log.Warnf("shift %s-%s is outside working hours, quoting anyway",
			services.FormatHour(job.Start()), services.FormatHour(job.End()))
	}

	quote := s.calculator.Quote(job, family)
	s.log.Debugf("quoted family=%s start=%d end=%d hours=%d total=%d",
		quote.Family, quote.Start, quote.End, len(quote.Lines), quote.Total)

	return &quote, nil
}

// Families は登録されているすべての家庭を返す
func (s *PayService) Families() ([]*entities.Family, error) {
	families, err := s.families.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list families")
	}
	return families, nil
}
