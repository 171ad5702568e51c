package gate

import (
	"time"

	"github.com/Brawl345/channelgate/model"
	"github.com/Brawl345/channelgate/utils/tgUtils"
)

type (
	Options struct {
		Registry  *Registry
		Platform  Platform
		Messenger Messenger
		// Verifications is optional and only used for the audit trail.
		Verifications model.VerificationService
		TitleCacheTTL time.Duration
	}

	// Gate ties the oracle, evaluator and verified set together and reacts to
	// /start and the recheck button.
	Gate struct {
		registry      *Registry
		oracle        *Oracle
		evaluator     *Evaluator
		verified      *VerifiedSet
		messenger     Messenger
		verifications model.VerificationService
		locks         *userLocks
	}

	StartRequest struct {
		UserID int64
		ChatID int64
	}

	RecheckRequest struct {
		UserID     int64
		ChatID     int64
		MessageID  int64
		CallbackID string
	}
)

func New(opts Options) *Gate {
	verifications := opts.Verifications
	if verifications == nil {
		verifications = model.NopVerificationService{}
	}

	oracle := NewOracle(opts.Platform, opts.TitleCacheTTL)

	return &Gate{
		registry:      opts.Registry,
		oracle:        oracle,
		evaluator:     NewEvaluator(opts.Registry, oracle),
		verified:      NewVerifiedSet(),
		messenger:     opts.Messenger,
		verifications: verifications,
		locks:         newUserLocks(),
	}
}

func (g *Gate) Registry() *Registry {
	return g.registry
}

func (g *Gate) Oracle() *Oracle {
	return g.oracle
}

func (g *Gate) Verified() *VerifiedSet {
	return g.verified
}

func (g *Gate) UnjoinedChannels(userID int64) []Channel {
	return g.evaluator.UnjoinedChannels(userID)
}

// Start handles the /start command.
func (g *Gate) Start(req StartRequest) error {
	unlock := g.locks.lock(req.UserID)
	defer unlock()

	unjoined := g.evaluator.UnjoinedChannels(req.UserID)
	if len(unjoined) == 0 {
		g.verified.Add(req.UserID)
		g.record(req.UserID, model.EventGranted, 0)
		_, err := g.messenger.SendMessage(req.ChatID, grantedText, nil)
		return err
	}

	g.deny(req.UserID, len(unjoined))
	_, err := g.messenger.SendMessage(req.ChatID, restrictedText(len(unjoined)), g.oracle.JoinKeyboard(unjoined))
	return err
}

// Recheck handles a press on the "I've Joined" button. On failure the
// original prompt is edited in place instead of sending a new one.
func (g *Gate) Recheck(req RecheckRequest) error {
	unlock := g.locks.lock(req.UserID)
	defer unlock()

	unjoined := g.evaluator.UnjoinedChannels(req.UserID)
	if len(unjoined) == 0 {
		g.verified.Add(req.UserID)
		g.record(req.UserID, model.EventGranted, 0)

		if err := g.messenger.AnswerCallback(req.CallbackID, verifiedNotice, false); err != nil {
			log.Err(err).
				Int64("user_id", req.UserID).
				Msg("Failed to answer callback query")
		}
		_, err := g.messenger.SendMessage(req.ChatID, recheckGrantedText, nil)
		return err
	}

	g.deny(req.UserID, len(unjoined))

	if err := g.messenger.AnswerCallback(req.CallbackID, stillMissingNotice, true); err != nil {
		log.Err(err).
			Int64("user_id", req.UserID).
			Msg("Failed to answer callback query")
	}

	err := g.messenger.EditMessage(req.ChatID, req.MessageID, missingText(len(unjoined)), g.oracle.JoinKeyboard(unjoined))
	if tgUtils.IsNotModified(err) {
		return nil
	}
	return err
}

// revokeIfDrifted re-evaluates a verified user and takes access away if a
// channel was left. Returns true if the user got revoked.
func (g *Gate) revokeIfDrifted(userID int64) bool {
	unlock := g.locks.lock(userID)
	defer unlock()

	// A concurrent handler may have changed the user since the snapshot
	if !g.verified.Contains(userID) {
		return false
	}

	unjoined := g.evaluator.UnjoinedChannels(userID)
	if len(unjoined) == 0 {
		return false
	}

	_, err := g.messenger.SendMessage(userID, revokedText, g.oracle.JoinKeyboard(unjoined))
	if err != nil {
		logDeliveryError(err, userID)
	}

	g.verified.Remove(userID)
	g.record(userID, model.EventRevoked, len(unjoined))
	return true
}

// deny drops a user whose latest check failed. Losing an earlier verification
// this way counts as a revocation. Caller holds the user lock.
func (g *Gate) deny(userID int64, missing int) {
	if g.verified.Contains(userID) {
		g.verified.Remove(userID)
		g.record(userID, model.EventRevoked, missing)
		return
	}
	g.record(userID, model.EventDenied, missing)
}

func logDeliveryError(err error, userID int64) {
	if tgUtils.IsUnreachable(err) {
		log.Debug().
			Err(err).
			Int64("user_id", userID).
			Msg("User can't be notified about revoked access")
		return
	}

	log.Warn().
		Err(err).
		Int64("user_id", userID).
		Msg("Failed to send revocation notice")
}

func (g *Gate) record(userID int64, event model.VerificationEvent, missing int) {
	if err := g.verifications.Record(userID, event, missing); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Str("event", string(event)).
			Msg("Failed to record verification event")
	}
}
