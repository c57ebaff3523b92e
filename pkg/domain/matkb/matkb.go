package matkb

import (
	"context"

	bconf "github.com/matkb/matkb/pkg/configs/backend"
	connk8s "github.com/matkb/matkb/pkg/conn/k8s"
	kcategory "github.com/matkb/matkb/pkg/domain/category/db"
	clusterk8s "github.com/matkb/matkb/pkg/domain/cluster/k8s"
	kfeedback "github.com/matkb/matkb/pkg/domain/feedback/db"
	kfield "github.com/matkb/matkb/pkg/domain/field/db"
	"github.com/matkb/matkb/pkg/domain/flux"
	fluxk8s "github.com/matkb/matkb/pkg/domain/flux/k8s"
	kgallery "github.com/matkb/matkb/pkg/domain/gallery/db"
	dbInterface "github.com/matkb/matkb/pkg/domain/matkb/db"
	"github.com/matkb/matkb/pkg/domain/matkb/db/postgres"
	"github.com/matkb/matkb/pkg/domain/training"
	ktraining "github.com/matkb/matkb/pkg/domain/training/db"
	"github.com/matkb/matkb/pkg/domain/training/telemetry"
	"k8s.io/client-go/kubernetes"
)

type Matkb interface {
	Config() *bconf.MatkbClusterConfig

	Category() kcategory.CategoryInterface
	Field() kfield.FieldInterface
	Gallery() kgallery.GalleryInterface
	Feedback() kfeedback.FeedbackInterface
	Training() ktraining.TrainingInterface

	Sessions() *training.Watcher
	Cluster() clusterk8s.Interface
	Flux() *flux.Monitor

	Close(ctx context.Context) error
}

type matkb struct {
	config *bconf.MatkbClusterConfig
	db     dbInterface.MatkbDatabase

	sessions *training.Watcher
	cluster  clusterk8s.Interface
	flux     *flux.Monitor
}

func Default(ctx context.Context, config *bconf.MatkbClusterConfig) (Matkb, error) {
	clientset := connk8s.ConnectToK8s()
	return New(ctx, config, clientset)
}

func New(
	ctx context.Context,
	config *bconf.MatkbClusterConfig,
	clientset kubernetes.Interface,
) (Matkb, error) {
	db, err := postgres.New(ctx, config.Database())
	if err != nil {
		return nil, err
	}

	dialer := telemetry.NewDialer(config.Telemetry().Origin())
	sessions := training.NewWatcher(
		db.Training(),
		training.WithClientFactory(func() *telemetry.Client {
			return telemetry.New(telemetry.WithDialer(dialer))
		}),
	)

	cluster := clusterk8s.New(
		clusterk8s.WrapK8sClient(clientset), config.Namespace(),
	)
	monitor := flux.NewMonitor(
		fluxk8s.New(fluxk8s.WrapK8sClient(clientset), config.Namespace()),
		config.Flux().PollInterval(),
	)

	return &matkb{
		config:   config,
		db:       db,
		sessions: sessions,
		cluster:  cluster,
		flux:     monitor,
	}, nil
}

func (m *matkb) Config() *bconf.MatkbClusterConfig {
	return m.config
}

func (m *matkb) Category() kcategory.CategoryInterface {
	return m.db.Category()
}

func (m *matkb) Field() kfield.FieldInterface {
	return m.db.Field()
}

func (m *matkb) Gallery() kgallery.GalleryInterface {
	return m.db.Gallery()
}

func (m *matkb) Feedback() kfeedback.FeedbackInterface {
	return m.db.Feedback()
}

func (m *matkb) Training() ktraining.TrainingInterface {
	return m.db.Training()
}

func (m *matkb) Sessions() *training.Watcher {
	return m.sessions
}

func (m *matkb) Cluster() clusterk8s.Interface {
	return m.cluster
}

func (m *matkb) Flux() *flux.Monitor {
	return m.flux
}

func (m *matkb) Close(ctx context.Context) error {
	m.sessions.DetachAll()
	return m.db.Close(ctx)
}
