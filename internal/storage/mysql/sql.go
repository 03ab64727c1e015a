package mysql

const upsertUserSQL = `
INSERT INTO users (id, name, email, role, avatar)
VALUES (:id, :name, :email, :role, :avatar)
ON DUPLICATE KEY UPDATE
  name   = VALUES(name),
  email  = VALUES(email),
  role   = VALUES(role),
  avatar = VALUES(avatar)
`

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, description, address, city, country, rating, review_count, price, images, amenities, featured)
VALUES
  (:id, :name, :description, :address, :city, :country, :rating, :review_count, :price, :images, :amenities, :featured)
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  description  = VALUES(description),
  address      = VALUES(address),
  city         = VALUES(city),
  country      = VALUES(country),
  rating       = VALUES(rating),
  review_count = VALUES(review_count),
  price        = VALUES(price),
  images       = VALUES(images),
  amenities    = VALUES(amenities),
  featured     = VALUES(featured),
  updated_at   = CURRENT_TIMESTAMP
`

const upsertRoomSQL = `
INSERT INTO rooms
  (id, hotel_id, name, description, price, capacity, images, amenities, available)
VALUES
  (:id, :hotel_id, :name, :description, :price, :capacity, :images, :amenities, :available)
ON DUPLICATE KEY UPDATE
  hotel_id    = VALUES(hotel_id),
  name        = VALUES(name),
  description = VALUES(description),
  price       = VALUES(price),
  capacity    = VALUES(capacity),
  images      = VALUES(images),
  amenities   = VALUES(amenities),
  available   = VALUES(available)
`

const upsertBookingSQL = `
INSERT INTO bookings
  (id, user_id, hotel_id, room_id, check_in, check_out, guests, status, total_price, created_at, updated_at)
VALUES
  (:id, :user_id, :hotel_id, :room_id, :check_in, :check_out, :guests, :status, :total_price, :created_at, :updated_at)
ON DUPLICATE KEY UPDATE
  status      = VALUES(status),
  total_price = VALUES(total_price),
  updated_at  = VALUES(updated_at)
`

const upsertStaffSQL = `
INSERT INTO staff (id, name, email, role, phone, hotel_id)
VALUES (:id, :name, :email, :role, :phone, :hotel_id)
ON DUPLICATE KEY UPDATE
  name     = VALUES(name),
  email    = VALUES(email),
  role     = VALUES(role),
  phone    = VALUES(phone),
  hotel_id = VALUES(hotel_id)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// seq keeps rows in first-inserted order, which the catalog preserves.

const selectUsersSQL = `SELECT id, name, email, role, avatar FROM users ORDER BY seq`

const selectHotelsSQL = `
SELECT id, name, description, address, city, country, rating, review_count, price, images, amenities, featured
FROM hotels
ORDER BY seq
`

const selectRoomsSQL = `
SELECT id, hotel_id, name, description, price, capacity, images, amenities, available
FROM rooms
ORDER BY seq
`

const selectBookingsSQL = `
SELECT id, user_id, hotel_id, room_id, check_in, check_out, guests, status, total_price, created_at, updated_at
FROM bookings
ORDER BY seq
`

const selectStaffSQL = `SELECT id, name, email, role, phone, hotel_id FROM staff ORDER BY seq`
