package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// psql builds queries with PostgreSQL-style $N placeholders. Shared by all
// shop-database repositories.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// eligibleCustomer keeps subscriptions whose account is either absent
// (guest subscriber) or alive. Only explicitly inactive or deleted accounts
// drop out.
const eligibleCustomer = "(c.id IS NULL OR (c.active AND NOT c.deleted))"

// contactRepository implements [ContactSource] over the shop database.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactSource {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) CountSubscriptions(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("COUNT(*)").
		From("newsletter_subscription ns").
		LeftJoin("customer c ON c.email = ns.email").
		Where(sq.Eq{"ns.active": true}).
		Where(eligibleCustomer).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*contactRepository.CountSubscriptions").Msg("error counting subscriptions")
		if isSchemaError(err) {
			return 0, fmt.Errorf("%w: %w", ErrShopSchema, err)
		}
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

func (r *contactRepository) SubscriptionsPage(ctx context.Context, limit, offset int) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(
		"ns.id", "ns.email", "ns.active",
		"c.id", "c.email", "c.active", "c.deleted", "c.is_guest", "c.billing_address_id",
		"c.first_name", "c.last_name", "c.country", "c.country_code", "c.state", "c.city",
		"c.address", "c.postal_code", "c.gender", "c.birth_date",
	).
		From("newsletter_subscription ns").
		LeftJoin("customer c ON c.email = ns.email").
		Where(sq.Eq{"ns.active": true}).
		Where(eligibleCustomer).
		OrderBy("ns.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SubscriptionsPage").Msg("error querying subscriptions page")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var contact models.Contact
		var (
			customerID       sql.NullInt64
			email            sql.NullString
			active, deleted  sql.NullBool
			isGuest          sql.NullBool
			billingAddressID sql.NullInt64
			firstName        sql.NullString
			lastName         sql.NullString
			country          sql.NullString
			countryCode      sql.NullString
			state            sql.NullString
			city             sql.NullString
			address          sql.NullString
			postalCode       sql.NullString
			gender           sql.NullString
			birthDate        sql.NullTime
		)

		err := rows.Scan(
			&contact.Subscription.ID, &contact.Subscription.Email, &contact.Subscription.Active,
			&customerID, &email, &active, &deleted, &isGuest, &billingAddressID,
			&firstName, &lastName, &country, &countryCode, &state, &city,
			&address, &postalCode, &gender, &birthDate,
		)
		if err != nil {
			log.Err(err).Str("func", "*contactRepository.SubscriptionsPage").Msg("error: scanning error")
			return nil, err
		}

		if customerID.Valid {
			customer := &models.Customer{
				ID:               customerID.Int64,
				Email:            email.String,
				Active:           active.Bool,
				Deleted:          deleted.Bool,
				IsGuest:          isGuest.Bool,
				BillingAddressID: billingAddressID.Int64,
				FirstName:        firstName.String,
				LastName:         lastName.String,
				Country:          country.String,
				CountryCode:      countryCode.String,
				State:            state.String,
				City:             city.String,
				Address:          address.String,
				PostalCode:       postalCode.String,
				Gender:           gender.String,
			}
			if birthDate.Valid {
				bd := birthDate.Time
				customer.BirthDate = &bd
			}
			contact.Customer = customer
		}

		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

func (r *contactRepository) SubscriptionByID(ctx context.Context, id int64) (models.Subscription, error) {
	query, args, err := psql.Select("id", "email", "active").
		From("newsletter_subscription").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Subscription{}, fmt.Errorf("build query: %w", err)
	}

	return r.scanSubscription(ctx, query, args)
}

func (r *contactRepository) SubscriptionByEmail(ctx context.Context, email string) (models.Subscription, error) {
	query, args, err := psql.Select("id", "email", "active").
		From("newsletter_subscription").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.Subscription{}, fmt.Errorf("build query: %w", err)
	}

	return r.scanSubscription(ctx, query, args)
}

func (r *contactRepository) scanSubscription(ctx context.Context, query string, args []any) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	var subscription models.Subscription
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&subscription.ID, &subscription.Email, &subscription.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscription{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.scanSubscription").Msg("error reading subscription")
		return models.Subscription{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return subscription, nil
}

func (r *contactRepository) CustomerByID(ctx context.Context, id int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(
		"id", "email", "active", "deleted", "is_guest", "billing_address_id",
		"first_name", "last_name", "country", "country_code", "state", "city",
		"address", "postal_code", "gender", "birth_date",
	).
		From("customer").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Customer{}, fmt.Errorf("build query: %w", err)
	}

	var customer models.Customer
	var birthDate sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID, &customer.Email, &customer.Active, &customer.Deleted,
		&customer.IsGuest, &customer.BillingAddressID,
		&customer.FirstName, &customer.LastName, &customer.Country, &customer.CountryCode,
		&customer.State, &customer.City, &customer.Address, &customer.PostalCode,
		&customer.Gender, &birthDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CustomerByID").Msg("error reading customer")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if birthDate.Valid {
		bd := birthDate.Time
		customer.BirthDate = &bd
	}

	return customer, nil
}

func (r *contactRepository) AddressByID(ctx context.Context, id int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(
		"id", "email", "first_name", "last_name", "company",
		"address1", "address2", "city", "country", "country_code",
		"state", "state_code", "zip", "phone",
	).
		From("address").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Address{}, fmt.Errorf("build query: %w", err)
	}

	var address models.Address
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&address.ID, &address.Email, &address.FirstName, &address.LastName, &address.Company,
		&address.Address1, &address.Address2, &address.City, &address.Country, &address.CountryCode,
		&address.State, &address.StateCode, &address.Zip, &address.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Address{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.AddressByID").Msg("error reading address")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return address, nil
}
