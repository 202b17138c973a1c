package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/config"
	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * Crear el logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * Cargar la configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Crear el cliente de correo
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("no se pudo crear el cliente de correo", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// Comprobar que el cliente conecta de verdad
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("no se pudo conectar con el servidor de correo", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Conectar con RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no se pudo conectar con rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// Abrir el canal
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no se pudo abrir el canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// Declarar la cola
	q, err := ch.QueueDeclare(
		"email_queue", // nombre de la cola
		true,          // durable, para que la cola sobreviva a los reinicios
		false,         // sin borrado automático cuando no hay consumidores
		false,         // sin exclusividad, puede haber varios consumidores
		false,         // esperar la confirmación de rabbitmq
		nil,           // sin argumentos extra
	)
	if err != nil {
		logger.Error("no se pudo declarar la cola", slog.String("error", err.Error()))
		return
	}

	// Escuchar CTRL+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Consumir mensajes
	msgs, err := ch.Consume(
		q.Name, // cola
		"",     // identificador de consumidor asignado por rabbitmq
		false,  // sin ack automático
		false,  // sin exclusividad
		false,  // no-local no está soportado por rabbitmq
		false,  // esperar la respuesta de rabbitmq
		nil,    // sin argumentos extra
	)
	if err != nil {
		logger.Error("no se pudieron consumir los mensajes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Contexto para cerrar la goroutine
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensaje recibido", slog.String("message", string(msg.Body)))
				// Deserializar el mensaje de correo
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("no se pudo deserializar el mensaje", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// Montar el correo
				mail := mail.NewMsg()
				if err := mail.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("no se pudo fijar el remitente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := mail.To(mailMessage.To); err != nil {
					logger.Error("no se pudo fijar el destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// Resolver la plantilla según el tipo de mensaje
				switch mailMessage.Type {
				case "monthly_roster":
					tmpl, err := template.ParseFiles("./templates/monthly_roster_email.html")
					if err != nil {
						logger.Error("no se pudo cargar la plantilla del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no se pudo montar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("Planificador de Escuderos - Tus turnos del mes")
				default:
					logger.Error("tipo de correo no soportado", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// Enviar el correo
				if err := client.DialAndSend(mail); err != nil {
					logger.Error("no se pudo enviar el correo", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // devolver el mensaje a la cola
					continue
				}

				// Confirmar el mensaje
				_ = msg.Ack(false)
			}
		}
	}()

	// Esperar la señal de CTRL+C
	logger.Info("esperando mensajes... (CTRL+C para salir)")
	<-sigChan

	// Apagado ordenado
	slog.Info("apagando el mail worker...")
	cancel()
	wg.Wait() // esperar a que terminen todas las goroutines
	slog.Info("mail worker apagado correctamente")
}
