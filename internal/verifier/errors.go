package verifier

import "errors"

// Таксономия ошибок движка верификации. Ошибки уровня слоя поглощаются
// координатором (деградируют в skip), структурные ошибки доходят до вызывающего
// через errors.Is.
var (
	// ErrLayerTimeout — слой не уложился в таймаут
	ErrLayerTimeout = errors.New("layer timeout")

	// ErrLayerUnavailable — временный сбой источника данных слоя
	ErrLayerUnavailable = errors.New("layer unavailable")

	// ErrInsufficientEvidence — все слои вернули skip, score вычислить нельзя;
	// отчет остается в pending
	ErrInsufficientEvidence = errors.New("insufficient evidence: all layers skipped")

	// ErrEvaluationInFlight — для отчета уже выполняется оценка
	ErrEvaluationInFlight = errors.New("evaluation already in flight")

	// ErrInvalidTransition — действие недопустимо в текущем статусе отчета
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrAlreadyClaimed — запись очереди уже захвачена другим аналитиком
	ErrAlreadyClaimed = errors.New("queue entry already claimed")

	// ErrReportNotFound — отчет не существует
	ErrReportNotFound = errors.New("report not found")

	// ErrNoVerification — у отчета еще нет ни одной попытки оценки
	ErrNoVerification = errors.New("no verification result for report")
)
