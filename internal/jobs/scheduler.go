// Package jobs holds the optional background tasks: a periodic product
// count log and the welcome email worker. Neither touches the request path;
// both only read or append.
package jobs

import (
	"log"
	"time"

	"katalog/internal/services"
)

// ProductCountLogger periodically logs the number of products in the store.
type ProductCountLogger struct {
	service  *services.ProductService
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewProductCountLogger creates a logger that ticks at the given interval.
func NewProductCountLogger(service *services.ProductService, interval time.Duration) *ProductCountLogger {
	return &ProductCountLogger{
		service:  service,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the ticker loop in a background goroutine.
func (l *ProductCountLogger) Start() {
	go func() {
		defer close(l.done)
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.logCount()
			case <-l.stop:
				return
			}
		}
	}()
}

// Stop ends the ticker loop and waits for it to finish.
func (l *ProductCountLogger) Stop() {
	close(l.stop)
	<-l.done
}

func (l *ProductCountLogger) logCount() {
	products, err := l.service.GetAllProducts()
	if err != nil {
		log.Printf("Error while counting products: %v", err)
		return
	}
	log.Printf("Total products in database: %d", len(products))
}
