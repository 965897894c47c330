package console

import (
	"context"
	"fmt"
	"io"

	"github.com/SscSPs/atm_simulator/internal/core/domain"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/utils"
)

// NewNotifier renders every notification as one line on w.
func NewNotifier(w io.Writer, currency domain.Currency) portssvc.Notifier {
	return portssvc.NotifierFunc(func(_ context.Context, n domain.Notification) {
		fmt.Fprintln(w, utils.RenderNotification(n, currency))
	})
}
