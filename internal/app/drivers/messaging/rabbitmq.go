package messaging

import (
	"fmt"
	"heallink-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// NewRabbitMQ dials the broker used for coordination events. The
// broker is optional infrastructure, so this is only called when
// RABBITMQ_ENABLED is set; a failed dial at that point is fatal.
func NewRabbitMQ(driverConfig *config.DriverConfig, bootLog *logrus.Logger) *amqp091.Connection {
	address := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	conn, err := amqp091.Dial(address)
	if err != nil {
		bootLog.WithError(err).Fatal("rabbitmq connection failed")
	}

	bootLog.WithFields(logrus.Fields{
		"host": driverConfig.RabbitMQ.Host,
		"port": driverConfig.RabbitMQ.Port,
	}).Info("rabbitmq connected")
	return conn
}
